package entity

// DocSequence backs the atomic document-number allocator. One row per code
// prefix (CUST, SAL, DISP, TKT, ENQ).
type DocSequence struct {
	Name  string `gorm:"primaryKey;size:20"`
	Value int64  `gorm:"not null;default:0"`
}

func (DocSequence) TableName() string {
	return "doc_sequences"
}

// Code prefixes and zero-pad widths per document family.
const (
	CodePrefixCustomer = "CUST"
	CodePrefixSale     = "SAL"
	CodePrefixDispatch = "DISP"
	CodePrefixTicket   = "TKT"
	CodePrefixEnquiry  = "ENQ"

	CodeWidthCustomer = 3
	CodeWidthSale     = 6
	CodeWidthDispatch = 5
	CodeWidthTicket   = 6
	CodeWidthEnquiry  = 6
)
