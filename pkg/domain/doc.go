/*
Package domain contains the core domain models for the Ishikawa analysis engine.

It defines the cause-effect tree entities and the analysis session state machine.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - TreeNode: One entry in a cause-effect diagram (key, display name, optional parent key).
  - Tree: An ordered node collection with structural invariants (single root, resolving parents).
  - Session: The runtime snapshot of one analysis (incident, level, status, generated tree).
  - ViewState: The UI-agnostic projection of a session (loading, chart visible, export enabled).
*/
package domain
