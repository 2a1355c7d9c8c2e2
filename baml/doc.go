// Package baml recovers the element structure of a decoded BAML record
// stream.
//
// BAML stores XAML markup as a flat sequence of typed records. Nesting is
// implied only by record types: header records (DocumentStart, ElementStart,
// PropertyComplexStart, ...) open a construct, footer records close it and
// every other record carries data for the innermost open construct.
//
//	DocumentStart                  Element DocumentStart
//	ElementStart   Type=Button       └── Element ElementStart
//	Property       Content=OK              body: Property
//	ElementEnd
//	DocumentEnd
//
// # Omitted terminators
//
// The XAML compiler leaves out some footers. Build tolerates this: a footer
// that does not match the innermost open element closes the nearest open
// ancestor it does match, and every element skipped on the way keeps no
// footer. The first matching ancestor wins.
//
// # Ownership
//
// Elements live in a Tree and refer to each other by index. An Element is a
// small value handle; copying it is cheap and never copies the subtree. The
// tree is immutable once Build returns, except for the Type and Attribute
// annotation slots which a renamer fills in afterwards.
package baml
