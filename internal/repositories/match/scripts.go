package match

import "github.com/redis/go-redis/v9"

// Error replies raised by the scripts. go-redis surfaces them as the error text.
const (
	replyNotFound      = "NOT_FOUND"
	replyNotPending    = "NOT_PENDING"
	replyWordSet       = "WORD_ALREADY_SET"
	replyNotActive     = "NOT_ACTIVE"
	replySlotFinished  = "SLOT_FINISHED"
	replyStaleAttempts = "STALE_ATTEMPTS"
)

// KEYS[1] match hash
// ARGV[1] slot, ARGV[2] word, ARGV[3] now (unix ms)
var setWordScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
  return redis.error_reply('NOT_FOUND')
end
if status ~= 'pending' then
  return redis.error_reply('NOT_PENDING')
end
local slot = ARGV[1]
if redis.call('HGET', KEYS[1], slot .. '_word_set') == '1' then
  return redis.error_reply('WORD_ALREADY_SET')
end
redis.call('HSET', KEYS[1], slot .. '_word', ARGV[2], slot .. '_word_set', '1', 'last_activity', ARGV[3])
local other = 'p1'
if slot == 'p1' then
  other = 'p2'
end
if redis.call('HGET', KEYS[1], other .. '_word_set') == '1' then
  redis.call('HSET', KEYS[1], 'status', 'active')
  return 1
end
return 0
`)

// KEYS[1] match hash, KEYS[2] slot guess list
// ARGV[1] slot, ARGV[2] expected attempts, ARGV[3] guess JSON,
// ARGV[4] "1" if the guess is correct, ARGV[5] now (unix ms)
//
// Finishers are recorded in commit order: the first slot to finish is first.
var appendGuessScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
  return redis.error_reply('NOT_FOUND')
end
if status ~= 'active' and status ~= 'waiting_for_opponent' then
  return redis.error_reply('NOT_ACTIVE')
end
local slot = ARGV[1]
local other = 'p1'
if slot == 'p1' then
  other = 'p2'
end
local maxAttempts = tonumber(redis.call('HGET', KEYS[1], 'max_attempts'))
local attempts = tonumber(redis.call('HGET', KEYS[1], slot .. '_attempts') or '0')
if redis.call('HGET', KEYS[1], slot .. '_solved') == '1' or attempts >= maxAttempts then
  return redis.error_reply('SLOT_FINISHED')
end
if attempts ~= tonumber(ARGV[2]) then
  return redis.error_reply('STALE_ATTEMPTS')
end
attempts = redis.call('HINCRBY', KEYS[1], slot .. '_attempts', 1)
redis.call('RPUSH', KEYS[2], ARGV[3])
redis.call('HSET', KEYS[1], 'last_activity', ARGV[5])
local finished = false
if ARGV[4] == '1' then
  redis.call('HSET', KEYS[1], slot .. '_solved', '1', slot .. '_solve_time', ARGV[5])
  finished = true
elseif attempts >= maxAttempts then
  finished = true
end
if finished then
  redis.call('HSET', KEYS[1], slot .. '_finished_at', ARGV[5])
  local uid = redis.call('HGET', KEYS[1], slot .. '_uid')
  local first = redis.call('HGET', KEYS[1], 'first_finisher_id')
  if not first or first == '' then
    redis.call('HSET', KEYS[1], 'first_finisher_id', uid)
  else
    redis.call('HSET', KEYS[1], 'second_finisher_id', uid)
  end
  local otherAttempts = tonumber(redis.call('HGET', KEYS[1], other .. '_attempts') or '0')
  local otherFinished = redis.call('HGET', KEYS[1], other .. '_solved') == '1' or otherAttempts >= maxAttempts
  if not otherFinished and status == 'active' then
    redis.call('HSET', KEYS[1], 'status', 'waiting_for_opponent')
  end
end
return attempts
`)

// KEYS[1] match hash, KEYS[2] active match set
// ARGV[1] status, ARGV[2] winner, ARGV[3] tie, ARGV[4] first finisher,
// ARGV[5] second finisher, ARGV[6] forfeited by, ARGV[7] now (unix ms),
// ARGV[8] match ID, ARGV[9]/ARGV[10] expected p1/p2 attempts or ""
var completeScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
  return redis.error_reply('NOT_FOUND')
end
if status == 'completed' or status == 'abandoned' then
  return 0
end
if ARGV[9] ~= '' then
  local p1 = tonumber(redis.call('HGET', KEYS[1], 'p1_attempts') or '0')
  local p2 = tonumber(redis.call('HGET', KEYS[1], 'p2_attempts') or '0')
  if p1 ~= tonumber(ARGV[9]) or p2 ~= tonumber(ARGV[10]) then
    return redis.error_reply('STALE_ATTEMPTS')
  end
end
redis.call('HSET', KEYS[1],
  'status', ARGV[1],
  'winner_id', ARGV[2],
  'tie', ARGV[3],
  'first_finisher_id', ARGV[4],
  'second_finisher_id', ARGV[5],
  'forfeited_by', ARGV[6],
  'completed_at', ARGV[7],
  'last_activity', ARGV[7])
redis.call('SREM', KEYS[2], ARGV[8])
return 1
`)
