// Package reda carries a securities reference-data subset (reda.005/006/007
// vintage): identifiers, amounts, prices, party and security composites, and
// the code-or-proprietary choice shapes that recur throughout the catalogue.
package reda
