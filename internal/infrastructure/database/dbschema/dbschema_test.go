package dbschema

import (
	"testing"

	"github.com/HinduAI/Nara/internal/infrastructure/database"
)

func TestAllModelsRegisteredForAutoMigrate(t *testing.T) {
	var haveUser, haveConversation, haveMessage bool
	for _, model := range database.SchemaRegistry {
		switch model.(type) {
		case User:
			haveUser = true
		case Conversation:
			haveConversation = true
		case Message:
			haveMessage = true
		}
	}

	if !haveUser {
		t.Error("User model is not registered for auto migration")
	}
	if !haveConversation {
		t.Error("Conversation model is not registered for auto migration")
	}
	if !haveMessage {
		t.Error("Message model is not registered for auto migration")
	}
}
