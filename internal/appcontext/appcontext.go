package appcontext

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/roypriyanshu02/graphic-walker-app/internal/config"
)

type Context struct {
	DB     *gorm.DB
	Logger *zap.Logger
	Config *config.Config
}
