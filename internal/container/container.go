package container

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rizkypratama/user-crud-api/config"
	"github.com/rizkypratama/user-crud-api/pkg/validation"
)

// app-level container to share constructed components across packages.
// Populated once in main; handlers never reach into it at request time.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
	rules       *validation.Validator
)

func SetConfig(c *config.Config)         { cfg = c }
func GetConfig() *config.Config          { return cfg }
func SetLogger(l *logrus.Logger)         { logger = l }
func GetLogger() *logrus.Logger          { return logger }
func SetMongoClient(c *mongo.Client)     { mongoClient = c }
func GetMongoClient() *mongo.Client      { return mongoClient }
func SetMongoDatabase(d *mongo.Database) { mongoDB = d }
func GetMongoDatabase() *mongo.Database  { return mongoDB }
func SetRules(v *validation.Validator)   { rules = v }
func GetRules() *validation.Validator {
	if rules != nil {
		return rules
	}
	return validation.New()
}
