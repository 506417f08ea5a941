// Package graphgen constants: shape minima shared by both builder kinds and
// method tags used to prefix errors with the operation name.
package graphgen

//-----------------------------------------------------------------------------
// Minimum Vertex Counts
//-----------------------------------------------------------------------------

// MinPathVertices is the smallest meaningful size for a path overlay.
// A path of fewer than 2 vertices has no edges.
const MinPathVertices = 2

// MinCycleVertices is the smallest meaningful size for a cycle overlay.
// Fewer than 3 vertices cannot form a ring without loops or multi-edges.
const MinCycleVertices = 3

// MinStarVertices is the smallest meaningful size for a star overlay:
// one hub plus at least one spoke.
const MinStarVertices = 2

// MinWheelVertices is the smallest meaningful size for a wheel overlay:
// a rim cycle of at least 3 vertices plus the hub.
const MinWheelVertices = 4

//-----------------------------------------------------------------------------
// Method Name Tags
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	methodNewUndirected = "NewUndirected"
	methodNewDirected   = "NewDirected"
	methodAddEdge       = "AddEdge"
	methodAddEdges      = "AddEdges"
	methodConnect       = "Connect"
	methodLabel         = "Label"
	methodPath          = "Path"
	methodCycle         = "Cycle"
	methodStar          = "Star"
	methodWheel         = "Wheel"
	methodClique        = "Clique"
	methodForest        = "Forest"
	methodTree          = "Tree"
	methodDAG           = "DAG"
)
