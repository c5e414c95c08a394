package models

// Patch types carry partial updates. A nil field was absent from the request
// body and must leave the stored column untouched; a non-nil field updates it
// even when it points at an empty or zero value. The field sets are the fixed
// per-resource whitelists; anything else in the body is ignored.

type ChatPatch struct {
	ConversationID *string  `json:"conversationId"`
	Text           *string  `json:"text"`
	IsMe           *bool    `json:"isMe"`
	Timestamp      *string  `json:"timestamp"`
	Type           *int     `json:"type"`
	SenderName     *string  `json:"senderName"`
	ServiceID      *string  `json:"serviceId"`
	ProposedPrice  *float64 `json:"proposedPrice"`
	OfferID        *string  `json:"offerId"`
}

// Empty reports whether no whitelisted field is present.
func (p *ChatPatch) Empty() bool {
	return p.ConversationID == nil && p.Text == nil && p.IsMe == nil &&
		p.Timestamp == nil && p.Type == nil && p.SenderName == nil &&
		p.ServiceID == nil && p.ProposedPrice == nil && p.OfferID == nil
}

type OrderPatch struct {
	ServiceID     *string  `json:"serviceId"`
	ServiceTitle  *string  `json:"serviceTitle"`
	SellerID      *string  `json:"sellerId"`
	SellerName    *string  `json:"sellerName"`
	CustomerID    *string  `json:"customerId"`
	CustomerName  *string  `json:"customerName"`
	Price         *float64 `json:"price"`
	Quantity      *int     `json:"quantity"`
	Notes         *string  `json:"notes"`
	Status        *int     `json:"status"`
	OrderDate     *string  `json:"orderDate"`
	Deadline      *string  `json:"deadline"`
	CompletedDate *string  `json:"completedDate"`
	PaymentMethod *string  `json:"paymentMethod"`
	IsPaid        *bool    `json:"isPaid"`
}

func (p *OrderPatch) Empty() bool {
	return p.ServiceID == nil && p.ServiceTitle == nil && p.SellerID == nil &&
		p.SellerName == nil && p.CustomerID == nil && p.CustomerName == nil &&
		p.Price == nil && p.Quantity == nil && p.Notes == nil &&
		p.Status == nil && p.OrderDate == nil && p.Deadline == nil &&
		p.CompletedDate == nil && p.PaymentMethod == nil && p.IsPaid == nil
}

type ServicePatch struct {
	Title           *string  `json:"title"`
	Seller          *string  `json:"seller"`
	Price           *float64 `json:"price"`
	Sold            *int     `json:"sold"`
	Rating          *float64 `json:"rating"`
	Reviews         *int     `json:"reviews"`
	IsVerified      *bool    `json:"is_verified"`
	HasFastResponse *bool    `json:"has_fast_response"`
	Category        *string  `json:"category"`
}

func (p *ServicePatch) Empty() bool {
	return p.Title == nil && p.Seller == nil && p.Price == nil &&
		p.Sold == nil && p.Rating == nil && p.Reviews == nil &&
		p.IsVerified == nil && p.HasFastResponse == nil && p.Category == nil
}

type UserPatch struct {
	NRP                 *string `json:"nrp"`
	Nama                *string `json:"nama"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	ProfileImage        *string `json:"profile_image"`
	Role                *string `json:"role"`
	IsVerifiedProvider  *bool   `json:"is_verified_provider"`
	ProviderSince       *string `json:"provider_since"`
	ProviderDescription *string `json:"provider_description"`
}

func (p *UserPatch) Empty() bool {
	return p.NRP == nil && p.Nama == nil && p.Email == nil &&
		p.Phone == nil && p.ProfileImage == nil && p.Role == nil &&
		p.IsVerifiedProvider == nil && p.ProviderSince == nil &&
		p.ProviderDescription == nil
}
