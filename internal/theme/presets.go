package theme

import (
	"maps"
	"slices"
)

// Preset is a named set of style specs. Presets layer on top of the default
// preset unless Replace is set.
type Preset struct {
	Name        string
	Description string
	Specs       map[string]Spec
	Replace     bool
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"mono":             MonoPreset,
}

// PresetNames returns the preset names sorted.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default pgtail theme",
	Specs: map[string]Spec{
		// Structural
		"timestamp":          {Foreground: "#696969"},
		"timestamp.fraction": {Foreground: "#555555"},
		"timestamp.zone":     {Foreground: "#555555"},
		"pid":                {Foreground: "#54A0FF"},
		"pid.line":           {Foreground: "#3D7CC9"},
		"session":            {Foreground: "#7F8C8D"},

		"severity":         {Bold: true},
		"severity.panic":   {Foreground: "#FFFFFF", Background: "#C0392B", Bold: true},
		"severity.fatal":   {Foreground: "#FF5F5F", Bold: true},
		"severity.error":   {Foreground: "#FF8787", Bold: true},
		"severity.warning": {Foreground: "#FECA57", Bold: true},
		"severity.notice":  {Foreground: "#54A0FF"},
		"severity.info":    {Foreground: "#73F59F"},
		"severity.log":     {Foreground: "#BBBBBB"},
		"severity.debug":   {Foreground: "#777777"},
		"severity.detail":  {Foreground: "#999999", Italic: true},

		// Diagnostics
		"sqlstate":        {Foreground: "#FF9F43", Bold: true},
		"error.condition": {Foreground: "#FF8787"},
		"error.position":  {Foreground: "#FF9F43"},
		"constraint":      {Foreground: "#E056FD"},

		// Performance
		"duration":          {Foreground: "#73F59F"},
		"duration.warning":  {Foreground: "#FECA57"},
		"duration.slow":     {Foreground: "#FF9F43", Bold: true},
		"duration.critical": {Foreground: "#FF5F5F", Bold: true},
		"size":              {Foreground: "#73F59F"},
		"size.large":        {Foreground: "#FECA57"},
		"size.huge":         {Foreground: "#FF5F5F", Bold: true},
		"rows":              {Foreground: "#48DBFB"},
		"percent":           {Foreground: "#48DBFB"},
		"plan":              {Foreground: "#A29BFE"},
		"buffers":           {Foreground: "#A29BFE"},

		// Objects
		"object":           {Foreground: "#48DBFB"},
		"object.quoted":    {Foreground: "#7ED6DF"},
		"object.qualified": {Foreground: "#48DBFB", Underline: true},
		"object.oid":       {Foreground: "#95AFC0"},

		// WAL and replication
		"wal":          {Foreground: "#C8A2C8"},
		"wal.timeline": {Foreground: "#B388EB", Bold: true},
		"wal.xid":      {Foreground: "#95AFC0"},

		// Connections
		"connection":       {Foreground: "#1DD1A1"},
		"connection.event": {Foreground: "#1DD1A1", Bold: true},
		"connection.key":   {Foreground: "#999999"},
		"connection.host":  {Foreground: "#54A0FF"},

		// SQL
		"sql.keyword":           {Foreground: "#54A0FF", Bold: true},
		"sql.function":          {Foreground: "#FECA57"},
		"sql.identifier":        {Foreground: "#CCCCCC"},
		"sql.quoted_identifier": {Foreground: "#7ED6DF"},
		"sql.string":            {Foreground: "#73F59F"},
		"sql.number":            {Foreground: "#FF9F43"},
		"sql.operator":          {Foreground: "#BBBBBB"},
		"sql.comment":           {Foreground: "#696969", Italic: true},
		"sql.punctuation":       {Foreground: "#888888"},
		"sql.param":             {Foreground: "#E056FD"},

		// Locks
		"lock.weak":   {Foreground: "#73F59F"},
		"lock.medium": {Foreground: "#FECA57"},
		"lock.strong": {Foreground: "#FF5F5F", Bold: true},
		"lock.event":  {Foreground: "#FF9F43", Bold: true},
		"lock.object": {Foreground: "#48DBFB"},

		// Checkpoints and maintenance
		"checkpoint":        {Foreground: "#A29BFE"},
		"checkpoint.event":  {Foreground: "#A29BFE", Bold: true},
		"checkpoint.flag":   {Foreground: "#C8A2C8"},
		"checkpoint.vacuum": {Foreground: "#1DD1A1"},

		// Misc
		"url":           {Foreground: "#54A0FF", Underline: true},
		"path":          {Foreground: "#7ED6DF"},
		"uuid":          {Foreground: "#95AFC0"},
		"constant":      {Foreground: "#E056FD"},
		"constant.null": {Foreground: "#E056FD", Italic: true},
		"number":        {Foreground: "#FF9F43"},
		"custom":        {Foreground: "#FFFFFF", Background: "#5F27CD"},
	},
}

var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula dark palette",
	Specs: map[string]Spec{
		"timestamp":         {Foreground: "#6272A4"},
		"pid":               {Foreground: "#8BE9FD"},
		"severity.error":    {Foreground: "#FF5555", Bold: true},
		"severity.fatal":    {Foreground: "#FF5555", Bold: true},
		"severity.warning":  {Foreground: "#F1FA8C", Bold: true},
		"severity.info":     {Foreground: "#50FA7B"},
		"severity.log":      {Foreground: "#F8F8F2"},
		"sqlstate":          {Foreground: "#FFB86C", Bold: true},
		"duration":          {Foreground: "#50FA7B"},
		"duration.warning":  {Foreground: "#F1FA8C"},
		"duration.slow":     {Foreground: "#FFB86C", Bold: true},
		"duration.critical": {Foreground: "#FF5555", Bold: true},
		"object":            {Foreground: "#8BE9FD"},
		"sql.keyword":       {Foreground: "#FF79C6", Bold: true},
		"sql.function":      {Foreground: "#50FA7B"},
		"sql.string":        {Foreground: "#F1FA8C"},
		"sql.number":        {Foreground: "#BD93F9"},
		"sql.comment":       {Foreground: "#6272A4", Italic: true},
		"sql.param":         {Foreground: "#FFB86C"},
		"lock.strong":       {Foreground: "#FF5555", Bold: true},
		"number":            {Foreground: "#BD93F9"},
		"constant":          {Foreground: "#BD93F9"},
		"custom":            {Foreground: "#282A36", Background: "#BD93F9"},
	},
}

var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish palette",
	Specs: map[string]Spec{
		"timestamp":         {Foreground: "#4C566A"},
		"pid":               {Foreground: "#88C0D0"},
		"severity.error":    {Foreground: "#BF616A", Bold: true},
		"severity.fatal":    {Foreground: "#BF616A", Bold: true},
		"severity.warning":  {Foreground: "#EBCB8B", Bold: true},
		"severity.info":     {Foreground: "#A3BE8C"},
		"severity.log":      {Foreground: "#D8DEE9"},
		"sqlstate":          {Foreground: "#D08770", Bold: true},
		"duration":          {Foreground: "#A3BE8C"},
		"duration.warning":  {Foreground: "#EBCB8B"},
		"duration.slow":     {Foreground: "#D08770", Bold: true},
		"duration.critical": {Foreground: "#BF616A", Bold: true},
		"object":            {Foreground: "#8FBCBB"},
		"sql.keyword":       {Foreground: "#81A1C1", Bold: true},
		"sql.function":      {Foreground: "#88C0D0"},
		"sql.string":        {Foreground: "#A3BE8C"},
		"sql.number":        {Foreground: "#B48EAD"},
		"sql.comment":       {Foreground: "#616E88", Italic: true},
		"number":            {Foreground: "#B48EAD"},
		"custom":            {Foreground: "#2E3440", Background: "#88C0D0"},
	},
}

var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha",
	Specs: map[string]Spec{
		"timestamp":         {Foreground: "#6C7086"},
		"pid":               {Foreground: "#89B4FA"},
		"severity.error":    {Foreground: "#F38BA8", Bold: true},
		"severity.fatal":    {Foreground: "#F38BA8", Bold: true},
		"severity.warning":  {Foreground: "#F9E2AF", Bold: true},
		"severity.info":     {Foreground: "#A6E3A1"},
		"severity.log":      {Foreground: "#CDD6F4"},
		"sqlstate":          {Foreground: "#FAB387", Bold: true},
		"duration":          {Foreground: "#A6E3A1"},
		"duration.warning":  {Foreground: "#F9E2AF"},
		"duration.slow":     {Foreground: "#FAB387", Bold: true},
		"duration.critical": {Foreground: "#F38BA8", Bold: true},
		"object":            {Foreground: "#94E2D5"},
		"sql.keyword":       {Foreground: "#CBA6F7", Bold: true},
		"sql.function":      {Foreground: "#89B4FA"},
		"sql.string":        {Foreground: "#A6E3A1"},
		"sql.number":        {Foreground: "#FAB387"},
		"sql.comment":       {Foreground: "#6C7086", Italic: true},
		"number":            {Foreground: "#FAB387"},
		"custom":            {Foreground: "#1E1E2E", Background: "#CBA6F7"},
	},
}

// MonoPreset uses attributes only, for terminals without color.
var MonoPreset = Preset{
	Name:        "mono",
	Description: "No colors, attributes only",
	Replace:     true,
	Specs: map[string]Spec{
		"timestamp":         {Faint: true},
		"severity.panic":    {Bold: true, Underline: true},
		"severity.fatal":    {Bold: true, Underline: true},
		"severity.error":    {Bold: true},
		"severity.warning":  {Bold: true},
		"severity.detail":   {Italic: true},
		"sqlstate":          {Bold: true},
		"duration.slow":     {Bold: true},
		"duration.critical": {Bold: true, Underline: true},
		"size.huge":         {Bold: true, Underline: true},
		"sql.keyword":       {Bold: true},
		"sql.comment":       {Faint: true, Italic: true},
		"sql.string":        {Italic: true},
		"lock.strong":       {Bold: true},
		"url":               {Underline: true},
		"custom":            {Underline: true},
	},
}
