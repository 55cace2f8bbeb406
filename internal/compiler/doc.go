// Package compiler turns CUE query definitions into query trees.
//
// Definitions live under a top-level "query" struct, one field per named
// query:
//
//	query: hypomania: {
//		kind:       "Duration"
//		comparison: "MoreThan"
//		days:       3
//		query: {
//			kind:  "And"
//			left:  {kind: "Filter", field: "elevation", comparison: "MoreThan", value: 2}
//			right: {kind: "Filter", field: "depression", comparison: "LessThan", value: 3}
//		}
//	}
//
// Comparisons accept names or symbols ("MoreThan" or ">"). Fields accept
// the field name or its prompt text. Errors carry the CUE source position
// of the offending value.
package compiler
