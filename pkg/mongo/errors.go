package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL, use L10N_MONGO_URL env var")
)
