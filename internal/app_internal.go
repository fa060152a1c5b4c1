package internal

import (
	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/controllers"
)

// AppInternal holds the root dispatcher and the action controllers.
type AppInternal struct {
	root        *controllers.ActionController
	controllers []entities.Controller
}

// NewAppInternal creates the application from the injected controllers.
func NewAppInternal(root *controllers.ActionController, actions *[]entities.Controller) *AppInternal {
	return &AppInternal{root: root, controllers: *actions}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.ActionController {
	return it.root
}

// GetControllers returns the controllers exposed as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
