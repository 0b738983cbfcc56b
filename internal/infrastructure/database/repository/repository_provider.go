package repository

import (
	"github.com/HinduAI/Nara/internal/infrastructure/database/repository/conversationrepo"
	"github.com/HinduAI/Nara/internal/infrastructure/database/repository/userrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	conversationrepo.NewConversationGormRepository,
	userrepo.NewUserGormRepository,
)
