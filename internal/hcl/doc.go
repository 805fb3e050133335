// Package hcl provides the concrete HCL implementation of the manifest
// loading interface defined in the `config` package. It is responsible for
// all file parsing, HCL-to-model translation, and static evaluation of
// manifest expressions.
package hcl
