package xform

// Layouts accepted by the parsers. Month, day, hour, minute and second
// fields may be written with one or two digits ("2019-1-1" is a date).
const (
	DateLayout     = "2006-1-2"
	DateTimeLayout = "2006-1-2T15:4:5"
	TimeLayout     = "15:4:5"
)
