package models

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Nullable columns map to pointer fields so NULL round-trips through JSON.

// ChatMessage is one message inside a conversation, keyed by a
// client-supplied or randomly generated hex token.
type ChatMessage struct {
	ID             string   `json:"id" db:"id"`
	ConversationID *string  `json:"conversationId" db:"conversationId"`
	Text           *string  `json:"text" db:"text"`
	IsMe           bool     `json:"isMe" db:"isMe"`
	Timestamp      string   `json:"timestamp" db:"timestamp"`
	Type           int      `json:"type" db:"type"`
	SenderName     *string  `json:"senderName" db:"senderName"`
	ServiceID      *string  `json:"serviceId" db:"serviceId"`
	ProposedPrice  *float64 `json:"proposedPrice" db:"proposedPrice"`
	OfferID        *string  `json:"offerId" db:"offerId"`
}

// Order is a purchase of a service by a customer. serviceId/customerId are
// opaque references; no referential integrity is enforced at this layer.
type Order struct {
	ID            string  `json:"id" db:"id"`
	ServiceID     *string `json:"serviceId" db:"serviceId"`
	ServiceTitle  *string `json:"serviceTitle" db:"serviceTitle"`
	SellerID      *string `json:"sellerId" db:"sellerId"`
	SellerName    *string `json:"sellerName" db:"sellerName"`
	CustomerID    *string `json:"customerId" db:"customerId"`
	CustomerName  *string `json:"customerName" db:"customerName"`
	Price         float64 `json:"price" db:"price"`
	Quantity      int     `json:"quantity" db:"quantity"`
	Notes         *string `json:"notes" db:"notes"`
	Status        int     `json:"status" db:"status"`
	OrderDate     string  `json:"orderDate" db:"orderDate"`
	Deadline      *string `json:"deadline" db:"deadline"`
	CompletedDate *string `json:"completedDate" db:"completedDate"`
	PaymentMethod *string `json:"paymentMethod" db:"paymentMethod"`
	IsPaid        bool    `json:"isPaid" db:"isPaid"`
}

// Service is a marketplace listing with a store-assigned integer id.
type Service struct {
	ID              int64   `json:"id" db:"id"`
	Title           string  `json:"title" db:"title"`
	Seller          string  `json:"seller" db:"seller"`
	Price           float64 `json:"price" db:"price"`
	Sold            int     `json:"sold" db:"sold"`
	Rating          float64 `json:"rating" db:"rating"`
	Reviews         int     `json:"reviews" db:"reviews"`
	IsVerified      bool    `json:"is_verified" db:"is_verified"`
	HasFastResponse bool    `json:"has_fast_response" db:"has_fast_response"`
	Category        *string `json:"category" db:"category"`
}

// User is a profile row. PasswordHash never serializes; read queries project
// it away entirely except for the credential lookup used by signin.
type User struct {
	ID                  int64   `json:"id" db:"id"`
	NRP                 *string `json:"nrp" db:"nrp"`
	Nama                *string `json:"nama" db:"nama"`
	Email               string  `json:"email" db:"email"`
	Phone               *string `json:"phone" db:"phone"`
	ProfileImage        *string `json:"profile_image" db:"profile_image"`
	Role                *string `json:"role" db:"role"`
	IsVerifiedProvider  bool    `json:"is_verified_provider" db:"is_verified_provider"`
	ProviderSince       *string `json:"provider_since" db:"provider_since"`
	ProviderDescription *string `json:"provider_description" db:"provider_description"`
	CreatedAt           string  `json:"created_at" db:"created_at"`
	PasswordHash        string  `json:"-" db:"password_hash"`
}
