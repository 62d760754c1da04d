package client

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/jakestbu/nilch/internal/search/types"
)

// The backend speaks three dialects: bare text sentinels, a JSON envelope
// {results, infobox}, and (images only, older deployments) a bare JSON
// array. A newer generation additionally wraps the sentinels as
// {"error": "noquery"}. classify accepts all of them.
func classify(modality types.Modality, body []byte) (*types.Outcome, error) {
	if status, ok := sentinelStatus(string(body)); ok {
		return &types.Outcome{Status: status, Modality: modality}, nil
	}

	if !gjson.ValidBytes(body) {
		return nil, types.ErrBadPayload
	}
	root := gjson.ParseBytes(body)

	if errField := root.Get("error"); errField.Exists() {
		if status, ok := sentinelStatus(errField.String()); ok {
			return &types.Outcome{Status: status, Modality: modality}, nil
		}
	}

	outcome := &types.Outcome{Status: types.StatusResults, Modality: modality}

	if modality == types.ModalityImage {
		items := root
		if !root.IsArray() {
			items = root.Get("results")
			if !items.Exists() {
				return nil, types.ErrBadPayload
			}
		}
		images, err := decodeImages(items)
		if err != nil {
			return nil, err
		}
		outcome.Images = images
		return outcome, nil
	}

	results := root.Get("results")
	if !results.Exists() {
		return nil, types.ErrBadPayload
	}

	if modality == types.ModalityVideo {
		videos, err := decodeVideos(results)
		if err != nil {
			return nil, err
		}
		outcome.Videos = videos
		return outcome, nil
	}

	web, err := decodeWeb(results)
	if err != nil {
		return nil, err
	}
	outcome.Web = web
	outcome.Infobox = decodeInfobox(root.Get("infobox"))
	return outcome, nil
}

func sentinelStatus(body string) (types.Status, bool) {
	switch body {
	case types.SentinelNoQuery:
		return types.StatusNoQuery, true
	case types.SentinelNoResults:
		return types.StatusNoResults, true
	}
	return types.StatusResults, false
}

// webItem is the wire form of one web result.
type webItem struct {
	Title   string `json:"title"`
	Href    string `json:"href"`
	Body    string `json:"body"`
	PageAge string `json:"page_age,omitempty"`
}

func decodeWeb(results gjson.Result) ([]types.WebResult, error) {
	var items []webItem
	if err := json.Unmarshal([]byte(results.Raw), &items); err != nil {
		return nil, fmt.Errorf("decode web results: %w", err)
	}

	web := make([]types.WebResult, len(items))
	for i, item := range items {
		web[i] = types.WebResult{
			Title:   item.Title,
			Href:    item.Href,
			Body:    item.Body,
			PageAge: item.PageAge,
		}
	}
	return web, nil
}

// imageItem is the wire form of one image result. Two backend generations
// name the thumbnail differently.
type imageItem struct {
	Image string `json:"image"`
	Img   string `json:"img"`
}

func decodeImages(results gjson.Result) ([]types.ImageResult, error) {
	var items []imageItem
	if err := json.Unmarshal([]byte(results.Raw), &items); err != nil {
		return nil, fmt.Errorf("decode image results: %w", err)
	}

	images := make([]types.ImageResult, 0, len(items))
	for _, item := range items {
		u := item.Image
		if u == "" {
			u = item.Img
		}
		if u == "" {
			continue
		}
		images = append(images, types.ImageResult{URL: u})
	}
	return images, nil
}

// videoItem is the wire form of one video result.
type videoItem struct {
	Title     string `json:"title"`
	Uploader  string `json:"uploader"`
	Publisher string `json:"publisher"`
	Content   string `json:"content"`
	Images    struct {
		Small  string `json:"small"`
		Medium string `json:"medium"`
		Large  string `json:"large"`
		Motion string `json:"motion"`
	} `json:"images"`
}

func decodeVideos(results gjson.Result) ([]types.VideoResult, error) {
	var items []videoItem
	if err := json.Unmarshal([]byte(results.Raw), &items); err != nil {
		return nil, fmt.Errorf("decode video results: %w", err)
	}

	videos := make([]types.VideoResult, len(items))
	for i, item := range items {
		videos[i] = types.VideoResult{
			Title:     item.Title,
			Uploader:  item.Uploader,
			Publisher: item.Publisher,
			Content:   item.Content,
			Images: types.VideoImages{
				Small:  item.Images.Small,
				Medium: item.Images.Medium,
				Large:  item.Images.Large,
				Motion: item.Images.Motion,
			},
		}
	}
	return videos, nil
}

// decodeInfobox maps the infobox field onto the closed variant set. True
// absence, JSON null, the legacy "null" string, and unknown infotype tags
// all collapse into the None variant; only a recognized tag yields a panel.
func decodeInfobox(field gjson.Result) types.Infobox {
	if !field.Exists() || field.Type == gjson.Null {
		return types.Infobox{}
	}
	if field.Type == gjson.String && field.String() == "null" {
		return types.Infobox{}
	}
	if !field.IsObject() {
		return types.Infobox{}
	}

	switch field.Get("infotype").String() {
	case types.InfotypeCalc:
		return types.Infobox{
			Kind: types.InfoboxCalc,
			Calc: &types.CalcInfobox{
				Equation: field.Get("equ").String(),
				Result:   field.Get("result").String(),
			},
		}
	case types.InfotypeDefinition:
		return types.Infobox{
			Kind: types.InfoboxDefinition,
			Definition: &types.DefinitionInfobox{
				Word:         field.Get("word").String(),
				PartOfSpeech: field.Get("type").String(),
				Definition:   field.Get("definition").String(),
				SourceURL:    field.Get("url").String(),
			},
		}
	case types.InfotypeEncyclopedia:
		return types.Infobox{
			Kind: types.InfoboxEncyclopedia,
			Encyclopedia: &types.EncyclopediaInfobox{
				Title:     field.Get("title").String(),
				Summary:   field.Get("info").String(),
				SourceURL: field.Get("url").String(),
			},
		}
	}
	return types.Infobox{}
}
