//go:build strtabdebug

package strtab

const debugValidate = true
