package config

// UnitFileExt is the extension of tree documents handed over by the parser.
const UnitFileExt = ".tree.yaml"

// UnitFileExtensions are all recognized tree document extensions.
var UnitFileExtensions = []string{".tree.yaml", ".tree.yml"}

// ConfigFileNames are searched, in order, when no config path is given.
var ConfigFileNames = []string{"elide.yaml", "elide.yml"}

// Defaults applied when the config file leaves a field unset.
const (
	DefaultMaxDepth = 10000
	DefaultWorkers  = 4
	DefaultColor    = "auto"
)

// Type names accepted in tree documents.
const (
	VoidTypeName = "void"
	BoolTypeName = "bool"
)
