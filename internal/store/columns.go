package store

// Column families of the task table.
const (
	FamilyInfo = "INFO"
	FamilyData = "DATA"
)

// Qualifiers of the INFO family, one per searchable attribute.
const (
	QualifierStatus = "STATUS"
	QualifierLoc    = "LOC"
	QualifierCode   = "CODE"
	QualifierPart   = "PART"
	QualifierBased  = "BASED"
	QualifierOwner  = "OWNER"
	QualifierFocus  = "FOCUS"
)

// QualifierBody holds the canonical document in the DATA family.
const QualifierBody = "BODY"

// Families lists the families the task table is created with.
var Families = []string{FamilyInfo, FamilyData}
