// Package gen renders resolved module plans into JavaScript and TypeScript
// declaration files.
//
// Each description file becomes one ".js" file holding the class stubs, the
// module definition assignments, and the side-effect statements, in
// resolution order. When type emission is enabled a sibling ".d.ts" file
// carries the static definition field types.
package gen
