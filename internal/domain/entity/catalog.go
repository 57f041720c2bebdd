package entity

// CatalogEntry is a row of any reference catalogue: a numeric id plus a
// name stored lower-cased and accent-folded, unique within its table.
type CatalogEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CatalogDef describes one of the twelve reference catalogues. Entity is the
// tag used in problem payloads, Table the backing relation, Path the plural
// URL segment.
type CatalogDef struct {
	Entity string
	Table  string
	Path   string
}

// Catalogs enumerates every reference catalogue exposed by the API. All of
// them share the same contract: normalized unique name, prefix search,
// fetch by id, delete.
var Catalogs = []CatalogDef{
	{Entity: "drug", Table: "drug", Path: "drugs"},
	{Entity: "healthProblem", Table: "health_problem", Path: "health-problems"},
	{Entity: "housingCondition", Table: "housing_condition", Path: "housing-conditions"},
	{Entity: "kinship", Table: "kinship", Path: "kinships"},
	{Entity: "maritalStatus", Table: "marital_status", Path: "marital-status"},
	{Entity: "profession", Table: "profession", Path: "professions"},
	{Entity: "scholarity", Table: "scholarity", Path: "scholarities"},
	{Entity: "documentType", Table: "document_type", Path: "document-types"},
	{Entity: "controlledMedication", Table: "controlled_medication", Path: "controlled-medications"},
	{Entity: "justiceProblem", Table: "justice_problem", Path: "justice-problems"},
	{Entity: "otherInstitution", Table: "other_institution", Path: "other-institutions"},
	{Entity: "releaseReason", Table: "release_reason", Path: "release-reasons"},
}
