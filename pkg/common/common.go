package common

import (
	"math/rand"
	"time"

	"github.com/bwmarrin/snowflake"
)

var snowflakeNode *snowflake.Node

func init() {
	var err error
	snowflakeNode, err = snowflake.NewNode(rand.New(rand.NewSource(time.Now().UnixNano())).Int63n(1023))
	if err != nil {
		panic(err)
	}
}

// UUIDint64 generates a snowflake based int64 identifier.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}
