//go:build !strtabdebug

package strtab

// debugValidate gates the validator on Build and FromParts. The production
// build trusts the builder's invariants; compile with -tags strtabdebug to
// fail loudly on any violation instead.
const debugValidate = false
