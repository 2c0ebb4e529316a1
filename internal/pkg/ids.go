package pkg

import "github.com/google/uuid"

func GenerateSessionID() string {
	return uuid.NewString()
}
