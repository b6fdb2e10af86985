// Package definition loads comparison definitions from disk.
//
// Two shapes are supported:
//
//   - a single compare.Definition, used to compare one pair of files
//   - a Catalog, which maps file name patterns to definitions for batch runs
//
// Files ending in .xml use the element layout below; any other extension is
// handed to Viper, so YAML, JSON and TOML work with the snake_case keys of
// compare.Definition.
//
//	<ComparisonDefinition>
//	  <Delimiter>,</Delimiter>
//	  <KeyColumns><Column>ID</Column></KeyColumns>
//	  <HeaderRowIndex>0</HeaderRowIndex>
//	  <ToleranceType>Relative</ToleranceType>
//	  <ToleranceValue>0.1</ToleranceValue>
//	</ComparisonDefinition>
//
// A catalog wraps FileComparisonDefinition elements, each with a Key, a
// FilePattern regular expression and a nested ComparisonDefinition, inside
// <MultipleComparisonDefinition><FileComparisonDefinitions>.
package definition
