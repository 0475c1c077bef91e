/*
Package ports defines the driven ports (interfaces) for the Ishikawa engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with different tree providers, diagram renderers, and session
storage backends.

# Key Interfaces

  - TreeProvider: Fetches a cause-effect tree for (incident, level). The mock
    provider stands in for a real backend; a substitute must surface errors
    through the same contract so caller failure handling applies unchanged.
  - Renderer: Turns a tree into a rendered diagram document.
  - SessionStore: Persists and loads analysis session state.
*/
package ports
