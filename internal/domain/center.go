package domain

// Center contact details of the tutorial centre shown on pages and in confirmations.
type Center struct {
	Name    string
	Address string
	Phone   string
	Email   string
}
