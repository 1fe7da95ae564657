// Package schemas registers all record-type schemas with the core registry.
// Import this package for its side effects:
//
//	import _ "github.com/JonMunkholm/csvtransform/internal/core/schemas"
//
// Each schema file registers its schema in init().
package schemas
