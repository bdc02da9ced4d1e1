package redis

import (
	"fmt"
	"strings"

	"github.com/mrodgar/gymrat/internal/model"
)

// Key scheme:
//   gymrat:user:{id}            -> JSON user
//   gymrat:username:{username}  -> user id (username lowercased)
//   gymrat:users                -> SET of user ids
//   gymrat:sessions:{userID}    -> LIST of JSON sessions, append order
//   gymrat:accessory:{id}       -> JSON accessory
//   gymrat:exercise:{id}        -> JSON exercise
//   gymrat:exercises            -> SET of exercise ids
//   gymrat:routine:{id}         -> JSON routine
//   gymrat:user_routines:{userID} -> SET of routine ids

const keyPrefix = "gymrat"

func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

func usernameKey(username string) string {
	return fmt.Sprintf("%s:username:%s", keyPrefix, strings.ToLower(username))
}

func usersKey() string {
	return keyPrefix + ":users"
}

func sessionsKey(userID model.UserID) string {
	return fmt.Sprintf("%s:sessions:%s", keyPrefix, userID)
}

func accessoryKey(id model.AccessoryID) string {
	return fmt.Sprintf("%s:accessory:%s", keyPrefix, id)
}

func exerciseKey(id model.ExerciseID) string {
	return fmt.Sprintf("%s:exercise:%s", keyPrefix, id)
}

func exercisesKey() string {
	return keyPrefix + ":exercises"
}

func routineKey(id model.RoutineID) string {
	return fmt.Sprintf("%s:routine:%s", keyPrefix, id)
}

func userRoutinesKey(userID model.UserID) string {
	return fmt.Sprintf("%s:user_routines:%s", keyPrefix, userID)
}
