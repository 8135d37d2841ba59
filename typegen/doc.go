// Package typegen translates schema objects into TypeScript type expressions.
//
// Translation is total: any value, including malformed schemas, produces a
// type. Shapes that carry no usable type information become any.
//
//	typegen.Translate(schema) // e.g. "{ 'id': number; 'tags': string[] }"
//
// Type names are matched by family:
//
//	number   integer, int32, int64, long, float, double, number
//	Date     date, dateTime, date-time, datetime
//	string   string, email, password, url, byte, binary
//	boolean  boolean
//
// When a schema has no type the format name is looked up in the same
// families, so {format: int64} is a number.
package typegen
