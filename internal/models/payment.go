package models

// Payment statuses as reported to and by the gateway.
const (
	PaymentStatusCreated = "created"
	PaymentStatusPaid    = "paid"
)

// Payment is one gateway order. OrderID is the gateway-issued order id;
// PaymentID and Signature arrive with the client-side checkout callback.
type Payment struct {
	BaseModel
	UserID    string `gorm:"type:uuid;not null;index" json:"userId"`
	OrderID   string `gorm:"uniqueIndex;not null" json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"-"`
	Amount    int64  `gorm:"not null" json:"amount"`
	Currency  string `gorm:"type:varchar(8);not null" json:"currency"`
	PlanType  string `gorm:"type:varchar(20);not null" json:"planType"`
	Receipt   string `gorm:"not null" json:"receipt"`
	Status    string `gorm:"type:varchar(20);default:'created'" json:"status"`
}
