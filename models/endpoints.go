// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyogo Technologies

package models

import "fmt"

// RedisPort is the port every bench-scoped Redis service listens on.
const RedisPort = 6379

// SocketIOPort is the port the bench socketio service listens on, recorded
// in common_site_config.json.
const SocketIOPort = 9000

// RedisCacheHost returns the host:port of the bench's Redis cache service.
func RedisCacheHost(benchName string) string {
	return fmt.Sprintf("%s-redis-cache:%d", benchName, RedisPort)
}

// RedisQueueHost returns the host:port of the bench's Redis queue service.
func RedisQueueHost(benchName string) string {
	return fmt.Sprintf("%s-redis-queue:%d", benchName, RedisPort)
}

// RedisCacheURL returns the redis:// connection URL of the bench's cache
// service.
func RedisCacheURL(benchName string) string {
	return "redis://" + RedisCacheHost(benchName)
}

// RedisQueueURL returns the redis:// connection URL of the bench's queue
// service.
func RedisQueueURL(benchName string) string {
	return "redis://" + RedisQueueHost(benchName)
}
