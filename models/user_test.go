package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserTableName(t *testing.T) {
	user := User{}
	assert.Equal(t, "users", user.TableName(), "Table name should be 'users'")
}

func TestSessionTableName(t *testing.T) {
	session := Session{}
	assert.Equal(t, "sessions", session.TableName(), "Table name should be 'sessions'")
}

func TestUserStructFields(t *testing.T) {
	user := User{
		ID:        "usr_1",
		Email:     "test@example.com",
		FirstName: "Joana",
		LastName:  "Domingos",
	}

	assert.Equal(t, "usr_1", user.ID, "ID is externally assigned, not auto-increment")
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Joana", user.FirstName)
	assert.Equal(t, "Domingos", user.LastName)
}
