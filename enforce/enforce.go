package enforce

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ENFORCE helper to halt program on error
func ENFORCE(query interface{}, args ...interface{}) {
	switch t := query.(type) {
	case bool:
		if !t {
			log.Panic().Msg("ENFORCE: " + fmt.Sprint(args...))
		}
	case error:
		if t != nil {
			log.Panic().Err(t).Msg("ENFORCE: " + fmt.Sprint(args...))
		}
	case string:
		log.Panic().Msg("ENFORCE: " + t + " " + fmt.Sprint(args...))
	case nil:
		// Allow nil to pass since we sometimes do enforce.ENFORCE(err) to ensure there is no error
	default:
		log.Panic().Msg("ENFORCE: incorrect usage of enforce with type: " + fmt.Sprintf("%T", t) + " - " + fmt.Sprint(args...))
	}
}
