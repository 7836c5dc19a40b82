package backend

// User identifies the signed-in back-office operator. Value object: replaced
// wholesale, never field-mutated.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionGrant is the payload returned by POST /session. The email is not
// echoed back in this flow.
type SessionGrant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Order is an open order as listed by GET /orders.
type Order struct {
	ID    string `json:"id"`
	Table int    `json:"table"`
	Name  string `json:"name"`
}

// OrderItem is one line of an order, from GET /order/detail.
type OrderItem struct {
	ID      string  `json:"id"`
	Amount  int     `json:"amount"`
	Product Product `json:"product"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
