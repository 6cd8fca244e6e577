package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// getList fetches a collection endpoint. A JSON null or a success body
// that is not valid JSON decodes to an empty slice so callers never see
// nil collections.
func getList[T any](ctx context.Context, client *Client, endpoint string) ([]T, error) {
	body, err := client.request(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var entries []T
	if err := json.Unmarshal(body, &entries); err != nil {
		return []T{}, nil
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

func getObject[T any](ctx context.Context, client *Client, endpoint string) (T, error) {
	var out T
	body, err := client.request(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return out, nil
}

// postJSON submits an insert payload. A success body that is not valid
// JSON is tolerated: the call succeeded, we just have no echo to hand
// back, so the zero value comes out.
func postJSON[T any](ctx context.Context, client *Client, endpoint string, payload any) (T, error) {
	var out T
	body, err := client.request(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return out, err
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			var zero T
			return zero, nil
		}
	}
	return out, nil
}

func (client *Client) GetAllSleep(ctx context.Context) ([]SleepEntry, error) {
	return getList[SleepEntry](ctx, client, "/get_all_sleep")
}

func (client *Client) GetAllDiet(ctx context.Context) ([]DietEntry, error) {
	return getList[DietEntry](ctx, client, "/get_all_diet")
}

func (client *Client) GetAllMenstrual(ctx context.Context) ([]MenstrualEntry, error) {
	return getList[MenstrualEntry](ctx, client, "/get_all_menstrual")
}

func (client *Client) GetAllSymptoms(ctx context.Context) ([]SymptomEntry, error) {
	return getList[SymptomEntry](ctx, client, "/get_all_symptoms")
}

func (client *Client) InsertSleep(ctx context.Context, req InsertSleepRequest) (SleepEntry, error) {
	return postJSON[SleepEntry](ctx, client, "/insert_sleep", req)
}

func (client *Client) InsertDiet(ctx context.Context, req InsertDietRequest) (DietEntry, error) {
	return postJSON[DietEntry](ctx, client, "/insert_diet", req)
}

func (client *Client) InsertMenstrual(ctx context.Context, req InsertMenstrualRequest) (MenstrualEntry, error) {
	return postJSON[MenstrualEntry](ctx, client, "/insert_menstrual", req)
}

func (client *Client) InsertSymptoms(ctx context.Context, req InsertSymptomsRequest) (SymptomEntry, error) {
	return postJSON[SymptomEntry](ctx, client, "/insert_symptoms", req)
}

func (client *Client) FetchTriggerSummary(ctx context.Context) (TriggerSummary, error) {
	return getObject[TriggerSummary](ctx, client, "/find_triggers")
}

func (client *Client) FetchSevenDayAverage(ctx context.Context) (SevenDayAverage, error) {
	return getObject[SevenDayAverage](ctx, client, "/seven_day_average")
}

func (client *Client) FetchFlareupPrediction(ctx context.Context) (FlareupPrediction, error) {
	return getObject[FlareupPrediction](ctx, client, "/predict_flareups")
}

// FetchRecommendations accepts either a JSON array of lines or a single
// string, normalising both to a slice.
func (client *Client) FetchRecommendations(ctx context.Context) ([]string, error) {
	body, err := client.request(ctx, http.MethodGet, "/recommendations", nil)
	if err != nil {
		return nil, err
	}
	var lines []string
	if err := json.Unmarshal(body, &lines); err == nil {
		if lines == nil {
			lines = []string{}
		}
		return lines, nil
	}
	var single string
	if err := json.Unmarshal(body, &single); err == nil {
		return []string{single}, nil
	}
	return nil, fmt.Errorf("decode /recommendations response: unexpected shape")
}
