package etchings

// CastersKey exposes castersKey to the external etchings_test package.
const CastersKey = castersKey
