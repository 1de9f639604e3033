/*
Package domain contains the core domain models for the wilayah region filter.

It defines the records of the administrative hierarchy (Province, Regency, District),
the read-only Dataset that groups them, and the mutable Selection that captures the
user's position in that hierarchy. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Dataset: The three record sets, loaded together and never mutated afterwards.
  - Selection: Up to three selected identifiers, one per level.
  - Action: A typed request to change the Selection (set a level or reset).
  - View: Everything a presentation layer needs to render the current Selection.
*/
package domain
