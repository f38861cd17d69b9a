package solo

import "github.com/redis/go-redis/v9"

// Error replies raised by the script
const (
	replyStale        = "STALE_VERSION"
	replyActiveExists = "ACTIVE_EXISTS"
)

// KEYS[1] game hash, KEYS[2] user active pointer,
// KEYS[3] score records zset, KEYS[4] players set
// ARGV[1] expected version, ARGV[2] game JSON, ARGV[3] "1" if active,
// ARGV[4] game id, ARGV[5] finished TTL (seconds),
// ARGV[6] record JSON or "", ARGV[7] record timestamp (unix ms), ARGV[8] user id
//
// The game is written only if its stored version still matches; a record is
// appended in the same step.
var saveGameScript = redis.NewScript(`
local current = tonumber(redis.call('HGET', KEYS[1], 'version') or '0')
if current ~= tonumber(ARGV[1]) then
  return redis.error_reply('STALE_VERSION')
end
if current == 0 and ARGV[3] == '1' and redis.call('EXISTS', KEYS[2]) == 1 then
  return redis.error_reply('ACTIVE_EXISTS')
end
local version = current + 1
redis.call('HSET', KEYS[1], 'data', ARGV[2], 'version', version)
if ARGV[3] == '1' then
  redis.call('SET', KEYS[2], ARGV[4])
else
  redis.call('EXPIRE', KEYS[1], ARGV[5])
  if redis.call('GET', KEYS[2]) == ARGV[4] then
    redis.call('DEL', KEYS[2])
  end
end
if ARGV[6] ~= '' then
  redis.call('ZADD', KEYS[3], ARGV[7], ARGV[6])
  redis.call('SADD', KEYS[4], ARGV[8])
end
return version
`)
