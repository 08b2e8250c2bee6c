package api

import "log/slog"

// LogValue methods give the logging interceptor a short summary of each
// request: identifiers and counts, never the full payload.

func (r GetRecipeRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("id", r.Id))
}

func (r DeleteRecipeRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("id", r.Id))
}

func (r SaveRecipeRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", r.Id),
		slog.String("name", r.Name),
		slog.Int("ingredients", len(r.Ingredients)),
	)
}

func (r AddArticleRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("section", r.Section),
		slog.String("name", r.Name),
	)
}

func (r ListRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("recipes", len(r.Recipes)),
		slog.Int("items", len(r.Items)),
		slog.Int("stock", len(r.Stock)),
	)
}
