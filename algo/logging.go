package algo

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("wgraph/algo", "graph algorithms")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
