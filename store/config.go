package store

// DefaultTableName is the table used when Config.TableName is empty.
const DefaultTableName = "http-curd-serverless-table"

// Config holds configuration for the Store.
type Config struct {
	// TableName is the DynamoDB table holding items.
	// The table must use "id" (string) as its partition key.
	// Default: "http-curd-serverless-table"
	TableName string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TableName: DefaultTableName,
	}
}

// validate fills in defaults for empty values.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = DefaultTableName
	}
}
