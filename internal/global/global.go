// Package global holds the process-wide state initialised once at startup.
package global

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/enzel-org/BestellDesk/config"
)

// ServerConfig is the parsed application configuration.
var ServerConfig *config.Configuration

// MongoSession is the shared MongoDB client.
var MongoSession *mongo.Client
