package common

//go:generate enumer -json -type AttributeType -trimprefix Attribute

// AttributeType is the OData scalar type of a product attribute
type AttributeType int

const (
	AttributeString AttributeType = iota
	AttributeInteger
	AttributeDouble
	AttributeDateTimeOffset
	AttributeBoolean
)

// ODataType returns the name of the OData.CSC attribute entity (e.g. DoubleAttribute)
func (t AttributeType) ODataType() string {
	return t.String() + "Attribute"
}

// Ordered returns true if the type supports lt/le/gt/ge comparisons and intervals
func (t AttributeType) Ordered() bool {
	switch t {
	case AttributeInteger, AttributeDouble, AttributeDateTimeOffset:
		return true
	}
	return false
}
