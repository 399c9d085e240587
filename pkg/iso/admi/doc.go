// Package admi carries the administration message set, currently the
// admi.002.001.01 message rejection. Types mirror the schema element names;
// every entity exposes Validate, checking its fields in declaration order and
// returning the first violation.
package admi
