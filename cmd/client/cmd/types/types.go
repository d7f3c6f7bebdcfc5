package types

type contextKey string

// ClientAppKey - ключ контекста, под которым root-команда передает
// собранное приложение дочерним командам.
const ClientAppKey contextKey = "app"
