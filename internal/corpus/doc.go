// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package corpus loads the recipe dataset the recommendation engine is built from.

Files are read through an in-memory DuckDB connection, so CSV, TSV, Parquet
and JSON sources share one code path. The format is taken from configuration
or inferred from the file extension.

# Columns

A recipe file must provide these columns (matched case-insensitively):

	recipe_name, ingredients_list, Description, Procedure,
	Region, nutritional_value, image_url

Other columns are ignored. Every value is read as text and NULL becomes the
empty string. Rows are returned in file order; that order is the recipe's
identity for the lifetime of the process.

# Usage

	recipes, err := corpus.Load(ctx, "data/recipes.csv", corpus.FormatAuto)
	if err != nil {
	    return err
	}

An empty file is not an error here. The recommendation engine rejects an
empty corpus when it is built.
*/
package corpus
