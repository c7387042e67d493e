package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// LoginSessionKey returns the Redis key holding the user id bound to a login session.
func (r *CacheKeyStruct) LoginSessionKey(sessionID string) string {
	return fmt.Sprintf("login:%s", sessionID)
}

var CacheKey = NewCacheKeyStruct()
