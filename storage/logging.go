package storage

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("wgraph/storage", "graph blob persistence")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
