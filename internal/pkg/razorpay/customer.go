package razorpay

import (
	"strings"
)

// EnsureCustomer returns the gateway customer id for the given contact,
// creating the customer when needed. Razorpay rejects duplicate contacts with
// a "Customer already exists" error; that race is resolved by falling back to
// a lookup by contact number.
func (c *Client) EnsureCustomer(name, email, contact string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"name":    name,
		"email":   email,
		"contact": contact,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	created, err := c.sdk.Customer.Create(data, nil)
	if err == nil {
		id, ok := created["id"].(string)
		if !ok {
			return "", &APIError{Op: "create customer", Message: "response missing customer id"}
		}
		return id, nil
	}

	if !strings.Contains(err.Error(), "Customer already exists") {
		return "", &APIError{Op: "create customer", Message: err.Error()}
	}

	return c.findCustomerByContact(contact)
}

func (c *Client) findCustomerByContact(contact string) (string, error) {
	resp, err := c.sdk.Customer.All(map[string]interface{}{"contact": contact}, nil)
	if err != nil {
		return "", &APIError{Op: "find customer", Message: err.Error()}
	}

	items, _ := resp["items"].([]interface{})
	for _, item := range items {
		customer, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := customer["id"].(string); ok {
			return id, nil
		}
	}

	return "", &APIError{Op: "find customer", Message: "no customer found for contact"}
}
