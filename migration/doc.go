/*
Package migration provides tooling necessary for working with schema versioned
models.

Every contract instance keeps its own schema version for each package whose
models it stores. The version lives in the instance namespace, next to the
data. A proxy instance therefore keeps the schema of the data it holds across
implementation upgrades, and an upgrade migrates the data forward.

Package integration.

1. Declare metadata as the first attribute of every model:

	type MyModel struct {
	    Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	    ...
	}

New fields may only be appended. Never reorder or remove fields.

2. Register migration functions for every schema version above one in the
package init. Schema version is declared per package not per entity so each
upgrade must provide migration function for all entities of the package. Use
NoModification for those entities that require no change:

	func init() {
	    migration.MustRegister(2, &MyModel{}, migration.NoModification)
	}

3. Wrap the orm.ModelBucket with NewModelBucket. Models are migrated on the
fly when read, and when written.

4. Initialize the package schema when the contract is deployed using
InitPkg, and move it forward on upgrade using Upgrade.
*/
package migration
