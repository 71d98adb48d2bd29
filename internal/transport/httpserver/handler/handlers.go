package handler

import (
	attributedomain "friendkb-go/internal/domain/attribute"
	frienddomain "friendkb-go/internal/domain/friend"
	groupdomain "friendkb-go/internal/domain/group"
	relationshipdomain "friendkb-go/internal/domain/relationship"
	userdomain "friendkb-go/internal/domain/user"
	"friendkb-go/internal/transport/httpserver/middleware"
	"friendkb-go/pkg/logger"
)

type Handlers struct {
	log           logger.Logger
	auth          *middleware.Auth
	Users         *userdomain.Service
	Friends       *frienddomain.Service
	Groups        *groupdomain.Service
	Attributes    *attributedomain.Service
	Relationships *relationshipdomain.Service
}

func New(
	log logger.Logger,
	auth *middleware.Auth,
	users *userdomain.Service,
	friends *frienddomain.Service,
	groups *groupdomain.Service,
	attributes *attributedomain.Service,
	relationships *relationshipdomain.Service,
) *Handlers {
	return &Handlers{
		log:           log,
		auth:          auth,
		Users:         users,
		Friends:       friends,
		Groups:        groups,
		Attributes:    attributes,
		Relationships: relationships,
	}
}
