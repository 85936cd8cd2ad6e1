package models

import "errors"

// Division partitions teams into a scheduling group.
type Division struct {
	ID   int    `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Validate ensures the division has well-formed data.
func (d *Division) Validate() error {
	if d.Name == "" {
		return errors.New("division name cannot be empty")
	}
	return nil
}
