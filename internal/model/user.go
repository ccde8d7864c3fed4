package model

import "time"

// Address is a delivery address inside the UAE.
type Address struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Emirate string `json:"emirate"`
}

// User is the signed-in shopper. Authentication is out of scope; the store
// only remembers who was set.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Addresses []Address `json:"addresses"`
}

// OrderStatus tracks fulfilment progress.
type OrderStatus string

// Order status constants.
const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

// Order is a placed order.
type Order struct {
	Date   time.Time   `json:"date"`
	ID     string      `json:"id"`
	Status OrderStatus `json:"status"`
	Items  []CartItem  `json:"items"`
	Total  int         `json:"total"`
}
