package models

// Account is a single account as served by GET /accounts/{id}.
type Account struct {
	ID      string  `json:"id"`
	Main    bool    `json:"main"`
	Balance float64 `json:"balance"`
}

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Granted bool `json:"granted"`
}

// Transfer moves Amount from the sender's main account to the recipient's.
type Transfer struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}

type TransferResult struct {
	Result bool `json:"result"`
}
