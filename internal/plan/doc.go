// Package plan resolves a module description file into compiler-ready
// metadata consumed by code generation.
//
// Resolution pipeline:
//  1. Validate the description file → diagnostics
//  2. Order modules so that each one follows the local modules it references
//     (deterministic topological sort; declared order when the graph is cyclic)
//  3. For each module:
//     - Lower references into runtime value and compile-time type expressions
//     - Apply the default selector scope mode when none is given
//     - Detect forward references to modules emitted later, unless pinned
//  4. Carry pre-expanded declarations through unchanged
package plan
