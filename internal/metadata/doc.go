// Package metadata provides the module description file schema, YAML and
// TOML loading, and structural validation.
//
// # Schema Overview
//
//	version: "1"
//	modules:
//	  - name: AppModule
//	    scope_mode: side-effect       # inline | side-effect | omit
//	    id: app
//	    bootstrap: [AppComponent]
//	    declarations: [AppComponent, HeaderComponent]
//	    imports:
//	      - CommonModule
//	      - value: SharedModule       # imported symbol
//	        from: ./shared
//	    exports: [HeaderComponent]
//	    schemas: [CUSTOM_ELEMENTS_SCHEMA]
//	    forward_refs: true            # optional; detected when omitted
//	declared:
//	  - name: LegacyModule           # pre-expanded, emitted verbatim
//	    type: LegacyModule
//	    imports: "function () { return [CommonModule]; }"
//
// A reference is either a bare identifier, used for both the runtime value
// and the compile-time type, or a mapping with value, type and from keys.
//
// TOML documents use the same keys:
//
//	[[modules]]
//	name = "AppModule"
//	imports = ["CommonModule", { value = "SharedModule", from = "./shared" }]
package metadata
