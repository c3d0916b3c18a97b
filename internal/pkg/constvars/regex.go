package constvars

const (
	RegexPersonName = `^[A-Za-z][A-Za-z\-'\s]{1,29}$`
	RegexUSZIPCode  = `^\d{5}(-\d{4})?$`
	RegexNationalID = `^\d{9}$`
	RegexDateISO    = `^\d{4}-\d{2}-\d{2}$`
)
